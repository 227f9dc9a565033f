package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fenilsonani/hyperhash/internal/core/objects"
)

func newHashObjectCommand() *cobra.Command {
	var (
		stdin   bool
		objType string
	)

	cmd := &cobra.Command{
		Use:   "hash-object [file...]",
		Short: "Compute the git object ID of a file",
		Long:  "Computes the object ID value git would assign to the content with the specified type",
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := objects.ParseObjectType(objType)
			if err != nil {
				return err
			}

			if stdin || len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read data: %w", err)
				}
				id, err := objects.HashReader(typ, int64(len(data)), bytes.NewReader(data))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			}

			for _, path := range args {
				id, err := hashObjectFile(typ, path)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdin, "stdin", false, "Read from stdin instead of from a file")
	cmd.Flags().StringVarP(&objType, "type", "t", "blob", "Specify the type of object")

	return cmd
}

func hashObjectFile(typ objects.ObjectType, path string) (objects.ObjectID, error) {
	file, err := os.Open(path)
	if err != nil {
		return objects.ObjectID{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return objects.ObjectID{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	id, err := objects.HashReader(typ, info.Size(), file)
	if err != nil {
		return objects.ObjectID{}, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return id, nil
}
