package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int // Position in the batch
	GameMetric
}

type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: w,
	}
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	writer := csv.NewWriter(w.w)

	// Write header
	header := []string{"id", "game", "seed", "winner", "reason", "rounds", "player1_battles", "player2_battles", "wars", "deepest_war", "chip_ins", "start_time", "duration"}
	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.GameMetric.ID,
			strconv.FormatUint(record.Seed, 10),
			record.Winner,
			record.Reason.String(),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.Battles[0]),
			strconv.Itoa(record.Battles[1]),
			strconv.Itoa(record.Wars),
			strconv.Itoa(record.DeepestWar),
			strconv.Itoa(record.ChipIns),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}
