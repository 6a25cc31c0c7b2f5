package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Each log entry is prefixed by 0x1e (record separator), followed by
// NUL-separated fields, with the free-form body terminated by 0x1f so
// that multi-line bodies parse unambiguously.
const logFormat = "%x1e%cI%x00%an%x00%s%x00%b%x1f"

// ReadLog runs git log for one repository and returns its raw commit
// entries, oldest first. The query runs against all refs; author and
// window filters are delegated to git itself.
func ReadLog(ctx context.Context, opts LogOptions) ([]RawCommit, error) {
	args := buildLogArgs(opts)

	// Stderr is kept out of the captured stream so git's own notices
	// cannot corrupt record parsing.
	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		detail := ""
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail = strings.TrimSpace(string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("git log failed in %s: %w: %s", opts.RepoPath, err, detail)
	}

	return parseLog(out)
}

func buildLogArgs(opts LogOptions) []string {
	args := []string{
		"-C", opts.RepoPath,
		"log",
		"--no-color",
		"--all",
		"--reverse",
		"--pretty=format:" + logFormat,
	}

	if opts.Author != "" {
		args = append(args, "--author="+opts.Author)
	}
	if opts.Since != "" {
		args = append(args, "--since="+opts.Since)
	}
	if opts.Before != "" {
		args = append(args, "--before="+opts.Before)
	}

	return args
}

// parseLog decodes the 0x1e/NUL/0x1f framed log output. Entries with an
// empty date field are dropped rather than reported as errors; a
// structurally malformed entry indicates a git version mismatch and
// fails the whole read.
func parseLog(out []byte) ([]RawCommit, error) {
	records := bytes.Split(out, []byte{0x1e})
	commits := make([]RawCommit, 0, len(records))

	for _, rec := range records {
		if len(bytes.TrimSpace(rec)) == 0 {
			continue
		}

		end := bytes.IndexByte(rec, 0x1f)
		if end == -1 {
			return nil, fmt.Errorf("unexpected git log record format (missing terminator)")
		}

		fields := bytes.SplitN(rec[:end], []byte{0x00}, 4)
		if len(fields) < 4 {
			return nil, fmt.Errorf("unexpected git log record format (want 4 fields, got %d)", len(fields))
		}

		date := strings.TrimSpace(string(fields[0]))
		if date == "" {
			continue
		}

		commits = append(commits, RawCommit{
			Date:    date,
			Author:  string(fields[1]),
			Subject: string(fields[2]),
			Body:    strings.TrimRight(string(fields[3]), "\n"),
		})
	}

	return commits, nil
}
