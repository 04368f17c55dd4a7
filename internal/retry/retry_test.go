package retry

import (
	"context"
	"errors"
	"testing"
)

func TestExecute_SuccessFirstAttempt(t *testing.T) {
	calls := 0
	result, err := Execute(context.Background(), Options{Config: Config{MaxAttempts: 3}}, func(attempt int) (interface{}, int, []byte, error) {
		calls++
		return "ok", 200, nil, nil
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result != "ok" {
		t.Errorf("Expected result %q, got %v", "ok", result)
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestExecute_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	opts := Options{
		Config: Config{MaxAttempts: 3},
		Checker: func(err error, statusCode int, body []byte) bool {
			return err != nil
		},
	}

	result, err := Execute(context.Background(), opts, func(attempt int) (interface{}, int, []byte, error) {
		calls++
		if calls < 3 {
			return nil, 0, nil, errors.New("transient")
		}
		return "ok", 200, nil, nil
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result != "ok" {
		t.Errorf("Expected result %q, got %v", "ok", result)
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}

func TestExecute_NonRetryableReturnsImmediately(t *testing.T) {
	calls := 0
	terminal := errors.New("terminal")
	opts := Options{
		Config: Config{MaxAttempts: 3},
		Checker: func(err error, statusCode int, body []byte) bool {
			return false
		},
	}

	_, err := Execute(context.Background(), opts, func(attempt int) (interface{}, int, []byte, error) {
		calls++
		return nil, 500, nil, terminal
	})

	if !errors.Is(err, terminal) {
		t.Fatalf("Expected the terminal error, got: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestExecute_ExhaustionCarriesLastFailure(t *testing.T) {
	calls := 0
	transient := errors.New("transient")
	opts := Options{
		Config: Config{MaxAttempts: 3},
		Checker: func(err error, statusCode int, body []byte) bool {
			return err != nil
		},
		APIName: "Test",
	}

	_, err := Execute(context.Background(), opts, func(attempt int) (interface{}, int, []byte, error) {
		calls++
		return nil, 0, nil, transient
	})

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Expected *ExhaustedError, got: %v", err)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("Expected 3 attempts recorded, got %d", exhausted.Attempts)
	}
	if !errors.Is(exhausted, transient) {
		t.Errorf("Expected the last failure to be wrapped")
	}
	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}
