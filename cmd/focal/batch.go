package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/born-ml/focal/internal/tensor"
)

// Batch is the JSON input of the eval command.
type Batch struct {
	YTrue        json.RawMessage `json:"y_true"`
	YPred        json.RawMessage `json:"y_pred"`
	SampleWeight json.RawMessage `json:"sample_weight,omitempty"`
}

// array is a dense row-major float64 array decoded from JSON.
type array struct {
	data  []float64
	shape tensor.Shape
}

var errEmptyArray = errors.New("empty array")

// decodeArray accepts a scalar, a flat list or a rectangular list of lists.
func decodeArray(raw json.RawMessage) (array, error) {
	var scalar float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return array{data: []float64{scalar}, shape: tensor.Shape{}}, nil
	}

	var flat []float64
	if err := json.Unmarshal(raw, &flat); err == nil {
		if len(flat) == 0 {
			return array{}, errEmptyArray
		}
		return array{data: flat, shape: tensor.Shape{len(flat)}}, nil
	}

	var rows [][]float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return array{}, fmt.Errorf("expected number, list or list of lists: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return array{}, errEmptyArray
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return array{}, fmt.Errorf("row %d has %d values, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}
	return array{data: data, shape: tensor.Shape{len(rows), cols}}, nil
}

// loadBatch reads and decodes a batch file.
func loadBatch(path string) (yTrue, yPred array, weight *array, err error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return array{}, array{}, nil, fmt.Errorf("read batch: %w", err)
	}
	return parseBatch(data)
}

func parseBatch(data []byte) (yTrue, yPred array, weight *array, err error) {
	var b Batch
	if err := json.Unmarshal(data, &b); err != nil {
		return array{}, array{}, nil, fmt.Errorf("decode batch: %w", err)
	}
	if b.YTrue == nil || b.YPred == nil {
		return array{}, array{}, nil, errors.New("decode batch: y_true and y_pred are required")
	}

	if yTrue, err = decodeArray(b.YTrue); err != nil {
		return array{}, array{}, nil, fmt.Errorf("y_true: %w", err)
	}
	if yPred, err = decodeArray(b.YPred); err != nil {
		return array{}, array{}, nil, fmt.Errorf("y_pred: %w", err)
	}
	if b.SampleWeight != nil {
		w, err := decodeArray(b.SampleWeight)
		if err != nil {
			return array{}, array{}, nil, fmt.Errorf("sample_weight: %w", err)
		}
		weight = &w
	}
	return yTrue, yPred, weight, nil
}
