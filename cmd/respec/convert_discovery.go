package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-respec/internal/fileutil"
)

// ErrInvalidExtension indicates an input file that is not Markdown.
var ErrInvalidExtension = errors.New("file must have .md or .markdown extension")

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string // .html; the PDF goes next to it
}

// discoverFiles finds all Markdown files to convert under inputPath.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a Markdown file.
// An outputDir ending in .html or .pdf names the output file itself.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := fileutil.ReplaceExt(filepath.Base(inputPath), ".html")

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	switch strings.ToLower(filepath.Ext(outputDir)) {
	case ".html":
		return outputDir
	case ".pdf":
		return fileutil.ReplaceExt(outputDir, ".html")
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// pdfOutputPath returns the PDF path written next to an HTML output.
func pdfOutputPath(htmlPath string) string {
	return fileutil.ReplaceExt(htmlPath, ".pdf")
}
