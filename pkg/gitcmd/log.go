package gitcmd

import (
	"context"
	"fmt"
	"strings"
)

// Commit represents a parsed git commit.
type Commit struct {
	Hash    string
	Short   string
	Subject string
	Author  string
	Date    string // committer date, ISO 8601
}

// HeadCommit returns the commit currently checked out.
// Uses null-byte delimiters for safe parsing of arbitrary subjects.
func (g *Git) HeadCommit(ctx context.Context) (Commit, error) {
	out, err := g.Run(ctx, "log", "-1", "--format=%H%x00%h%x00%s%x00%an%x00%cI")
	if err != nil {
		return Commit{}, err
	}
	fields := strings.Split(out, "\x00")
	if len(fields) != 5 {
		return Commit{}, fmt.Errorf("unexpected git log output: %q", out)
	}
	return Commit{
		Hash:    fields[0],
		Short:   fields[1],
		Subject: fields[2],
		Author:  fields[3],
		Date:    fields[4],
	}, nil
}
