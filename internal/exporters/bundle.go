package exporters

import (
	"archive/tar"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// WriteBundle packs a finalized artifact directory into a tar.xz archive.
// Entries are written in lexical walk order with fixed header fields, so
// bundling the same artifact tree twice yields the same archive contents.
func WriteBundle(artifactDir, bundlePath string) error {
	file, err := os.Create(bundlePath)
	if err != nil {
		return fmt.Errorf("creating bundle: %w", err)
	}

	xzWriter, err := xz.NewWriter(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("creating xz writer: %w", err)
	}
	tarWriter := tar.NewWriter(xzWriter)

	walkErr := filepath.WalkDir(artifactDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(artifactDir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return writeToTar(tarWriter, filepath.ToSlash(rel), data)
	})
	if walkErr != nil {
		tarWriter.Close()
		xzWriter.Close()
		file.Close()
		return fmt.Errorf("bundling %s: %w", artifactDir, walkErr)
	}

	if err := tarWriter.Close(); err != nil {
		xzWriter.Close()
		file.Close()
		return fmt.Errorf("closing tar stream: %w", err)
	}
	if err := xzWriter.Close(); err != nil {
		file.Close()
		return fmt.Errorf("closing xz stream: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing bundle: %w", err)
	}
	return nil
}

func writeToTar(tw *tar.Writer, name string, data []byte) error {
	header := &tar.Header{
		Name: name,
		Mode: 0644,
		Size: int64(len(data)),
	}
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	_, err := tw.Write(data)
	return err
}
