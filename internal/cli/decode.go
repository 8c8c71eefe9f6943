package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oalang/dpbpe/internal/bpe"
	"github.com/oalang/dpbpe/internal/logging"
)

func newDecodeCmd() *cobra.Command {
	var subwordsPath, outputPath string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Reassemble subword-segmented text into whole words",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := runContextFrom(cmd)
			log := rc.Logger.With(logging.String("command", "decode"))

			in, err := os.Open(subwordsPath)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			defer in.Close()

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			defer out.Close()

			if err := bpe.DecodeSubwords(in, out); err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			log.Info("wrote decoded text", logging.String("path", outputPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&subwordsPath, "subwords", "", "path to the subword-segmented text")
	cmd.Flags().StringVar(&outputPath, "output", "", "path to write the decoded text")
	cmd.MarkFlagRequired("subwords")
	cmd.MarkFlagRequired("output")

	return cmd
}
