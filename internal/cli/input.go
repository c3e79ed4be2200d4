package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guicheweb/recibo/internal/application/service"
	"github.com/guicheweb/recibo/internal/domain/entity"
)

// readReceipt decodes a receipt file. ".json" files are decoded as JSON,
// everything else (stdin included) as YAML, which also accepts JSON.
func readReceipt(path string, stdin io.Reader) (*entity.Receipt, error) {
	if path == "" {
		return nil, fmt.Errorf("an input file is required (--input)")
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt: %w", err)
	}

	receipt := &entity.Receipt{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(receipt)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(receipt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode receipt %s: %w", path, err)
	}

	if err := service.SanitizeReceipt(receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// writeJSON prints v indented
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
