// Command streamexif dumps the Exif metadata of a JPEG file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	loadEnvDefaults()

	root := &cobra.Command{
		Use:   "streamexif",
		Short: "streamexif - stream Exif metadata out of a JPEG file",
	}
	root.AddCommand(newDumpCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
