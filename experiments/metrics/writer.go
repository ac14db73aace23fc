package metrics

import (
	"encoding/csv"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteBattleRecords(records []BattleRecord) error {
	header := []string{"game", "seed", "result", "turns", "fort_start", "fort_end", "attacker_losses", "defender_losses", "attacker_xp", "defender_xp", "loot"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.FormatUint(record.Seed, 10),
			record.Result,
			strconv.Itoa(record.TurnsExecuted),
			strconv.Itoa(record.StartFortHitpoints),
			strconv.Itoa(record.FinalFortHitpoints),
			strconv.Itoa(record.AttackerLosses),
			strconv.Itoa(record.DefenderLosses),
			strconv.Itoa(record.AttackerExperience),
			strconv.Itoa(record.DefenderExperience),
			formatGold(record.Loot),
		})
	}
	return w.write("battle_records.csv", header, rows)
}

func (w *Writer) WriteSpyRecords(records []SpyRecord) error {
	header := []string{"game", "seed", "mode", "target", "success", "spies_sent", "spies_lost", "intel_percentage", "units_killed"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.FormatUint(record.Seed, 10),
			record.Mode,
			record.Target,
			strconv.FormatBool(record.Success),
			strconv.Itoa(record.SpiesSent),
			strconv.Itoa(record.SpiesLost),
			strconv.Itoa(record.Percentage),
			strconv.Itoa(record.UnitsKilled),
		})
	}
	return w.write("spy_records.csv", header, rows)
}

func (w *Writer) WriteSummary(summary Summary) error {
	header := []string{"games", "attacker_wins", "win_rate", "turns", "forts_destroyed", "attacker_losses", "defender_losses", "spies_sent", "spies_lost", "units_killed", "loot", "duration"}
	row := []string{
		strconv.Itoa(summary.Games),
		strconv.Itoa(summary.AttackerWins),
		strconv.FormatFloat(summary.WinRate(), 'f', 4, 64),
		strconv.Itoa(summary.TurnsExecuted),
		strconv.Itoa(summary.FortsDestroyed),
		strconv.Itoa(summary.AttackerLosses),
		strconv.Itoa(summary.DefenderLosses),
		strconv.Itoa(summary.SpiesSent),
		strconv.Itoa(summary.SpiesLost),
		strconv.Itoa(summary.UnitsKilled),
		formatGold(summary.Loot),
		summary.Duration.String(),
	}
	return w.write("summary.csv", header, [][]string{row})
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func formatGold(gold *big.Int) string {
	if gold == nil {
		return "0"
	}
	return gold.String()
}
