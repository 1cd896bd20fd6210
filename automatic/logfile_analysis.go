package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/domino14/klondike/stats"
)

// AnalyzeLogFile rebuilds batch statistics from a CSV game log.
func AnalyzeLogFile(filepath string) (*stats.Tally, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.FieldsPerRecord = 6

	tally := &stats.Tally{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == "dealID" {
			continue
		}
		res, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("deal %s: %w", record[0], err)
		}
		tally.Add(res)
	}
	return tally, nil
}

func parseRecord(record []string) (stats.Result, error) {
	res := stats.Result{DealID: record[0], Seed: record[1]}
	var err error
	if res.Won, err = strconv.ParseBool(record[2]); err != nil {
		return res, err
	}
	ints := []*int{&res.Foundation, &res.Moves, &res.Rounds}
	for i, p := range ints {
		if *p, err = strconv.Atoi(record[3+i]); err != nil {
			return res, err
		}
	}
	return res, nil
}
