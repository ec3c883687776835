package utils

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"
)

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NilIfBlank turns an empty or whitespace-only string into nil.
func NilIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
