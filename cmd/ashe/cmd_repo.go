package main

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ashe/batch"
	"github.com/dhamidi/ashe/config"
	"github.com/dhamidi/ashe/errs"
	"github.com/dhamidi/ashe/logging"
	"github.com/dhamidi/ashe/vcs"
)

// javaSourceRootSuffix is the conventional Maven/Gradle layout suffix the
// repository-batch driver looks for when deciding which directories to
// hand to the batch driver.
const javaSourceRootSuffix = "src/main/java"

// newRepoBatchCmd builds the repository-batch CLI: read a CSV of
// Repository,Branch rows, clone or fetch each one into destDir, find its
// Java source roots, and run the batch driver over each one. Per
// SPEC_FULL.md §6's "CLI — repository batch".
func newRepoBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo-batch <csv-file> <dest-dir> <model>",
		Short: "Clone each repository listed in a CSV and batch-refine its Java source roots",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath := args[0]
			destDir := args[1]
			model := args[2]

			cfg, err := loadConfig("")
			if err != nil {
				return err
			}

			rows, err := readRepositoryRows(csvPath)
			if err != nil {
				return err
			}

			for _, row := range rows {
				if err := processRepository(row, destDir, model, cfg); err != nil {
					logging.Printf("repository %s: %v", row.Repository, err)
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

// repositoryRow is one CSV data row: a clone URL and the branch to track.
type repositoryRow struct {
	Repository string
	Branch     string
}

// readRepositoryRows parses csvPath, requiring the exact header row
// "Repository,Branch" described in SPEC_FULL.md §6.
func readRepositoryRows(csvPath string) ([]repositoryRow, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, errs.Wrap(errs.IoError, err, "opening "+csvPath)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, errs.Wrap(errs.FormatError, err, "reading CSV header from "+csvPath)
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != "Repository" || strings.TrimSpace(header[1]) != "Branch" {
		return nil, errs.Newf(errs.FormatError, "expected CSV header \"Repository,Branch\" in %s, got %v", csvPath, header)
	}

	var rows []repositoryRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.FormatError, err, "reading CSV row from "+csvPath)
		}
		if len(record) < 2 {
			continue
		}
		rows = append(rows, repositoryRow{Repository: record[0], Branch: record[1]})
	}
	return rows, nil
}

// processRepository clones or fetches row's repository into destDir, then
// runs the batch driver against every Java source root found inside it.
func processRepository(row repositoryRow, destDir, model string, cfg *config.Config) error {
	repoDir := filepath.Join(destDir, repositorySlug(row.Repository))

	if err := vcs.CloneOrFetch(context.Background(), row.Repository, row.Branch, repoDir); err != nil {
		return err
	}

	roots, err := findJavaSourceRoots(repoDir)
	if err != nil {
		return err
	}

	for _, root := range roots {
		result, err := batch.ProcessDirectory(root, root, model, cfg)
		if err != nil {
			return err
		}
		logging.Printf("%s: cleaned=%d failed=%d files_skipped=%d", root, result.Cleaned, result.Failed, result.FilesSkipped)
	}
	return nil
}

// repositorySlug derives a filesystem-safe directory name from a clone
// URL: the last path segment with a trailing ".git" stripped.
func repositorySlug(repoURL string) string {
	slug := strings.TrimSuffix(strings.TrimSuffix(repoURL, "/"), ".git")
	if idx := strings.LastIndexAny(slug, "/:"); idx >= 0 {
		slug = slug[idx+1:]
	}
	if slug == "" {
		slug = "repo"
	}
	return slug
}

// findJavaSourceRoots walks root looking for directories whose path ends
// in "src/main/java", excluding any path containing a "/test/" or
// "/tests/" segment, per SPEC_FULL.md §6's repository-batch layout
// convention.
func findJavaSourceRoots(root string) ([]string, error) {
	var roots []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		normalized := filepath.ToSlash(path)
		if strings.Contains(normalized, "/test/") || strings.Contains(normalized, "/tests/") {
			return filepath.SkipDir
		}
		if strings.HasSuffix(normalized, "/"+javaSourceRootSuffix) || normalized == javaSourceRootSuffix {
			roots = append(roots, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(errs.IoError, err, "walking "+root)
	}
	return roots, nil
}
