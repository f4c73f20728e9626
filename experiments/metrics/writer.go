package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentRecord struct {
	Seat        string
	Kind        string
	Policy      string
	Evaluation  string
	Depth       int
	Simulations int
	Epsilon     float64
	TotalScore  int
}

type DealRecord struct {
	ID int
	DealMetric
}

type MoveRecord struct {
	Deal int // DealRecord.ID
	MoveMetric
}

type ThroughputRecord struct {
	Goroutines   int
	Decisions    int
	FullPlayouts int
	Duration     time.Duration
}

func (r ThroughputRecord) PlayoutsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.FullPlayouts) / r.Duration.Seconds()
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold one experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
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

func (w *Writer) WriteAgentRecords(records []AgentRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Seat,
			record.Kind,
			record.Policy,
			record.Evaluation,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Simulations),
			strconv.FormatFloat(record.Epsilon, 'f', -1, 64),
			strconv.Itoa(record.TotalScore),
		})
	}
	header := []string{"seat", "kind", "policy", "evaluation", "depth", "simulations", "epsilon", "total_score"}
	return w.write("agents.csv", header, rows)
}

func (w *Writer) WriteDealRecords(records []DealRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.DealID.String(),
			record.StartingSeat,
			record.Trump,
			strconv.Itoa(record.CardsInHand),
		}
		for _, values := range [][4]int{record.Bids, record.TricksWon, record.Scores} {
			for _, v := range values {
				row = append(row, strconv.Itoa(v))
			}
		}
		row = append(row,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		)
		rows = append(rows, row)
	}
	header := []string{
		"id", "deal", "starting_seat", "trump", "cards_in_hand",
		"bid_n", "bid_e", "bid_s", "bid_w",
		"tricks_n", "tricks_e", "tricks_s", "tricks_w",
		"score_n", "score_e", "score_s", "score_w",
		"start_time", "end_time", "duration", "total_moves",
	}
	return w.write("deal_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Deal),
			strconv.Itoa(record.Step),
			record.Seat,
			record.Card,
			record.Agent,
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
			strconv.FormatBool(record.IsTreeReset),
		})
	}
	header := []string{"deal", "step", "seat", "card", "agent", "duration", "episodes", "full_playouts", "is_tree_reset"}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Goroutines),
			strconv.Itoa(record.Decisions),
			strconv.Itoa(record.FullPlayouts),
			record.Duration.String(),
			strconv.FormatFloat(record.PlayoutsPerSecond(), 'f', 1, 64),
		})
	}
	header := []string{"goroutines", "decisions", "full_playouts", "duration", "playouts_per_second"}
	return w.write("throughput.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
