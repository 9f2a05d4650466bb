package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantType CommandType
		wantArgs []string
	}{
		{"rapor", CommandReport, nil},
		{"/Hafta 2024-06-05", CommandWeek, []string{"2024-06-05"}},
		{"  EKSIK ", CommandMissing, nil},
		{"fatura", CommandInvoice, nil},
		{"yardım", CommandHelp, nil},
		{"merhaba nasılsın", CommandUnknown, []string{"nasılsın"}},
		{"", CommandUnknown, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd := ParseCommand(tt.input)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
			assert.Equal(t, tt.input, cmd.Raw)
		})
	}
}

func TestChatReplyText(t *testing.T) {
	assert.Equal(t, "*Başlık*\nmetin", ChatReply{Title: "Başlık", Message: "metin"}.Text())
	assert.Equal(t, "metin", ChatReply{Message: "metin"}.Text())
}
