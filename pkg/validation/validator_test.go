package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sampleRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Score    *int   `json:"score" binding:"omitempty,gte=0,lte=100"`
}

func validate(t *testing.T, payload string) error {
	t.Helper()
	var req sampleRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(&req)
}

func TestMessageUsesJSONFieldNames(t *testing.T) {
	Init()

	err := validate(t, `{"password": "password123"}`)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if got := Message(err); got != "phone is required" {
		t.Errorf("Message = %q, want %q", got, "phone is required")
	}
}

func TestMessageMinLength(t *testing.T) {
	Init()

	err := validate(t, `{"phone": "5550100000", "password": "short"}`)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if got := Message(err); got != "password must be at least 8 characters long" {
		t.Errorf("Message = %q", got)
	}
}

func TestMessageRangeTags(t *testing.T) {
	Init()

	err := validate(t, `{"phone": "5550100000", "password": "password123", "score": 150}`)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if got := Message(err); got != "score must be less than or equal to 100" {
		t.Errorf("Message = %q", got)
	}
}

func TestMessageMalformedJSON(t *testing.T) {
	Init()

	err := validate(t, `{"phone": `)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if got := Message(err); got != "invalid request body" {
		t.Errorf("Message = %q, want %q", got, "invalid request body")
	}
}

func TestMessageNil(t *testing.T) {
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
}
