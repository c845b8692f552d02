package builtin

import (
	"bytes"
	"io"
	"os"

	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/plugins"
)

// GitLFSName is the bundle name of the Git LFS guard
const GitLFSName = "git_lfs"

// lfsPointerPrefix opens every Git LFS pointer file
var lfsPointerPrefix = []byte("version https://git-lfs.github.com/spec/v1")

type gitLFS struct {
	plugins.DatasetBase
}

// BeforeLoad fails when the dataset file at path is an LFS pointer rather
// than the payload. Files that cannot be opened are left for storage to report.
func (gitLFS) BeforeLoad(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, len(lfsPointerPrefix))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil
	}
	if !bytes.Equal(head[:n], lfsPointerPrefix) {
		return nil
	}

	return errors.Newf(errors.ErrLFSPlaceholder,
		"dataset %s is a Git LFS pointer; run 'git lfs pull' to fetch its contents", path).
		WithDetail("path", path)
}

// GitLFS guards dataset loads against unfetched Git LFS objects
func GitLFS() *plugins.Bundle {
	return plugins.MustBundle(GitLFSName, plugins.WithDataset(gitLFS{}))
}
