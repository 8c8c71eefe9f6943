package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oalang/dpbpe/internal/bpe"
	"github.com/oalang/dpbpe/internal/logging"
)

func newTrainModelCmd(_ *RootOptions) *cobra.Command {
	var vocabPath, outputPath string

	cmd := &cobra.Command{
		Use:   "train-model",
		Short: "Train a byte-pair-encoding merge model from a vocabulary file",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := runContextFrom(cmd)
			log := rc.Logger.With(logging.String("command", "train-model"))

			in, err := os.Open(vocabPath)
			if err != nil {
				return fmt.Errorf("train-model: %w", err)
			}
			defer in.Close()

			vocab := bpe.NewVocabulary()
			if err := vocab.IngestVocabularyFile(in, vocabPath); err != nil {
				return fmt.Errorf("train-model: %w", err)
			}

			maxSubwords := rc.Config.Train.MaxSubwords
			log.Info("training", logging.Int("max_subwords", maxSubwords), logging.Int("distinct_tokens", vocab.Len()))

			result := bpe.Train(vocab, maxSubwords)
			log.Info("training complete",
				logging.Int("operations", result.Operations),
			)
			if result.StoppedEarly {
				log.Info("stopped early: no pairs left to merge")
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("train-model: %w", err)
			}
			defer out.Close()

			if err := result.Model.Emit(out); err != nil {
				return fmt.Errorf("train-model: %w", err)
			}
			log.Info("wrote model file", logging.String("path", outputPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocabulary", "", "path to the vocabulary file")
	cmd.Flags().StringVar(&outputPath, "output", "", "path to write the trained model")
	cmd.MarkFlagRequired("vocabulary")
	cmd.MarkFlagRequired("output")

	return cmd
}
