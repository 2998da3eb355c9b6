package analyzer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestComputeEndToEnd(t *testing.T) {
	res := Compute("abc", FixedJitter(0))

	if want := 30 + Hash("abc", 70); res.RipenessPercentage != want || want != 64 {
		t.Errorf("RipenessPercentage = %d, want 64", res.RipenessPercentage)
	}
	if res.Status != "สุก" {
		t.Errorf("Status = %q, want สุก", res.Status)
	}
	if res.TextureDescription != TextureDescription {
		t.Errorf("TextureDescription = %q", res.TextureDescription)
	}
	if len(res.Spectrum) != 18 || len(res.Forecast) != 5 {
		t.Errorf("got %d readings, %d forecast entries", len(res.Spectrum), len(res.Forecast))
	}
}

func TestComputeUsesOnlySeedPrefix(t *testing.T) {
	prefix := strings.Repeat("Q", SeedLength)
	a := Compute(prefix+"tail-one", FixedJitter(0))
	b := Compute(prefix+"a-completely-different-tail", FixedJitter(0))
	if !reflect.DeepEqual(a, b) {
		t.Error("inputs sharing the seed prefix produced different results")
	}
}

func TestComputeBaseRipenessRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		res := Compute(strings.Repeat("x", i)+"data:image/png;base64,", FixedJitter(0))
		if res.RipenessPercentage < 30 || res.RipenessPercentage > 99 {
			t.Fatalf("input %d ripeness %d out of [30,99]", i, res.RipenessPercentage)
		}
		if res.Status != Bucket(res.RipenessPercentage).StatusLabel() {
			t.Fatalf("input %d status %q does not match ripeness %d", i, res.Status, res.RipenessPercentage)
		}
	}
}

func TestComputeEmptyInput(t *testing.T) {
	res := Compute("", FixedJitter(0))
	if res.RipenessPercentage != 30 || res.Status != "ดิบ" {
		t.Errorf("empty input = %d %q, want 30 ดิบ", res.RipenessPercentage, res.Status)
	}
}

func TestAnalyzeIsIdempotentWithoutJitter(t *testing.T) {
	a := New(WithDelay(0), WithJitter(FixedJitter(0)))
	first, err := a.Analyze(context.Background(), "data:image/jpeg;base64,/9j/4AAQ")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Analyze(context.Background(), "data:image/jpeg;base64,/9j/4AAQ")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis differs")
	}
}

func TestAnalyzeWaitsForDelay(t *testing.T) {
	a := New(WithDelay(30*time.Millisecond), WithJitter(FixedJitter(0)))
	start := time.Now()
	if _, err := a.Analyze(context.Background(), "abc"); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Analyze returned after %v, before the delay", elapsed)
	}
}

func TestAnalyzeCancelled(t *testing.T) {
	a := New(WithDelay(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := a.Analyze(ctx, "abc")
	if res != nil {
		t.Error("expected no result")
	}
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want timeout kind", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, should wrap context.Canceled", err)
	}
	if UserMessage(err) != KindTimeout.UserMessage() {
		t.Errorf("UserMessage = %q", UserMessage(err))
	}
}

func TestErrorKinds(t *testing.T) {
	err := newError(KindInvalidImage, "bad", nil)
	if !errors.Is(err, ErrInvalidImage) || errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("kind matching broken for %v", err)
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Error("plain error should be unknown kind")
	}
	if UserMessage(errors.New("plain")) != genericMessage {
		t.Error("plain error should get the generic message")
	}
}
