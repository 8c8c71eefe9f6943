package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oalang/dpbpe/internal/bpe"
	"github.com/oalang/dpbpe/internal/logging"
)

func newCompileVocabularyCmd() *cobra.Command {
	var textPath, outputPath string

	cmd := &cobra.Command{
		Use:   "compile-vocabulary",
		Short: "Build a weighted token vocabulary from raw text",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := runContextFrom(cmd)
			log := rc.Logger.With(logging.String("command", "compile-vocabulary"))

			in, err := os.Open(textPath)
			if err != nil {
				return fmt.Errorf("compile-vocabulary: %w", err)
			}
			defer in.Close()

			vocab := bpe.NewVocabulary()
			if err := vocab.IngestText(in); err != nil {
				return fmt.Errorf("compile-vocabulary: %w", err)
			}
			log.Info("ingested text", logging.Int("distinct_tokens", vocab.Len()))

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("compile-vocabulary: %w", err)
			}
			defer out.Close()

			if err := vocab.EmitVocabularyFile(out); err != nil {
				return fmt.Errorf("compile-vocabulary: %w", err)
			}
			log.Info("wrote vocabulary file", logging.String("path", outputPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&textPath, "text", "", "path to raw text corpus")
	cmd.Flags().StringVar(&outputPath, "output", "", "path to write the vocabulary file")
	cmd.MarkFlagRequired("text")
	cmd.MarkFlagRequired("output")

	return cmd
}
