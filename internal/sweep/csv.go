package sweep

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"monopoly-sim/internal/model"
)

func WriteLedgerCSV(path string, ledger []Row) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeLedgerCSV(f, ledger)
}

func EncodeLedgerCSV(out io.Writer, ledger []Row) error {
	w := csv.NewWriter(out)

	header := []string{
		"index",
		"axis",
		"value",
		"q_max",
		"p_max",
		"mc",
		"competitive_q",
		"competitive_p",
		"monopoly_q",
		"monopoly_p",
		"profit",
		"deadweight_loss",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			string(r.Axis),
			fmtFloat(r.Value),
			fmtFloat(r.Market.QMax),
			fmtFloat(r.Market.PMax),
			fmtFloat(r.Market.MC),
			fmtFloat(r.CompetitiveQ),
			fmtFloat(r.CompetitiveP),
			fmtFloat(r.MonopolyQ),
			fmtFloat(r.MonopolyP),
			fmtFloat(r.Profit),
			fmtFloat(r.DeadweightLoss),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteCurvesCSV writes sampled demand/MR curves for plotting elsewhere.
func WriteCurvesCSV(path string, samples []model.CurveSample) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeCurvesCSV(f, samples)
}

func EncodeCurvesCSV(out io.Writer, samples []model.CurveSample) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"q", "p_demand", "p_mr"}); err != nil {
		return err
	}
	for _, s := range samples {
		if err := w.Write([]string{fmtFloat(s.Q), fmtFloat(s.PDemand), fmtFloat(s.PMarginal)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// create makes sure the output directory exists.
func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
