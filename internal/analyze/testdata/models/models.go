package models

import "time"

type Status string

type CustomType struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

type ExampleClass struct {
	AString        *string       `json:"a_string,omitempty"`
	CustomType     *CustomType   `json:"custom_type"`
	CustomTypeList []*CustomType `json:"custom_type_list"`
	Status         Status        `json:"status"`
	Score          float64
	Secret         string            `json:"-"`
	Lookup         map[string]string `json:"lookup"`
	Tags           []string          `json:"tags"`
	CreatedAt      time.Time         `json:"created_at"`

	hidden string
}

type internalOnly struct {
	Value int
}

var _ = internalOnly{}.Value
