package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oalang/dpbpe/internal/bpe"
	"github.com/oalang/dpbpe/internal/logging"
)

func newEncodeCmd() *cobra.Command {
	var modelPath, textPath, outputPath string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Segment text into subwords using a trained model",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := runContextFrom(cmd)
			log := rc.Logger.With(logging.String("command", "encode"))

			modelFile, err := os.Open(modelPath)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			model, err := bpe.LoadModel(modelFile, modelPath)
			modelFile.Close()
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			log.Info("loaded model", logging.Int("operations", model.Len()))

			in, err := os.Open(textPath)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			defer in.Close()

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			defer out.Close()

			enc := bpe.NewEncoder(model)
			if err := enc.EncodeText(in, out); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			log.Info("wrote encoded text", logging.String("path", outputPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "bpe-model", "", "path to the trained model file")
	cmd.Flags().StringVar(&textPath, "text", "", "path to the raw text to encode")
	cmd.Flags().StringVar(&outputPath, "output", "", "path to write the encoded subwords")
	cmd.MarkFlagRequired("bpe-model")
	cmd.MarkFlagRequired("text")
	cmd.MarkFlagRequired("output")

	return cmd
}
