package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fenilsonani/hyperhash/internal/sha1block"
	"github.com/fenilsonani/hyperhash/pkg/sha1"
)

func newSumCommand() *cobra.Command {
	var backendName string

	cmd := &cobra.Command{
		Use:   "sum [file...]",
		Short: "Print SHA-1 checksums",
		Long:  "Prints the SHA-1 digest of each file, or of standard input when no file (or -) is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := sha1block.Lookup(backendName)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"-"}
			}

			for _, path := range args {
				sum, err := sumPath(backend, cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.EncodeToString(sum[:]), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&backendName, "backend", "b", defaultBackend(), "Compression backend (auto, generic, arm64-sha1)")

	return cmd
}

func sumPath(backend sha1block.Backend, stdin io.Reader, path string) ([sha1.Size]byte, error) {
	if path == "-" {
		return sumReader(backend, stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return [sha1.Size]byte{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	sum, err := sumReader(backend, file)
	if err != nil {
		return sum, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return sum, nil
}

// sumReader streams r through a fresh digest.
func sumReader(backend sha1block.Backend, r io.Reader) ([sha1.Size]byte, error) {
	d := sha1.NewWithBackend(backend)
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if uerr := d.Update(buf[:n]); uerr != nil {
				return [sha1.Size]byte{}, uerr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return [sha1.Size]byte{}, fmt.Errorf("failed to read data: %w", err)
		}
	}
	return d.Finalize()
}
