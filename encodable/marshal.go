package encodable

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Marshal encodes e and serializes the result.
func Marshal(e Encodable) ([]byte, error) {
	data, err := json.Marshal(e.EncodeToJSON())
	if err != nil {
		return nil, fmt.Errorf("marshaling %T: %w", e, err)
	}

	return data, nil
}

// Unmarshal parses data as a JSON object and decodes it into d. Numbers are
// kept as json.Number literals so integers beyond float64 precision survive.
func Unmarshal(data []byte, d Decodable) error {
	var representation map[string]any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&representation); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", d, err)
	}

	d.DecodeFromJSON(representation)

	return nil
}
