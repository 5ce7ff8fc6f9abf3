package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/adoc/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.core")
	defer teardown()
	//
	var y1, y2, y3 interface{}
	x := some(42)
	y1, _ = x.Match(option.Maybe{
		option.None: 7,
		option.Some: x.v + 1,
	})
	//
	x = none()
	y2, _ = x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	//
	x = some(42)
	y3, _ = x.Match(option.Maybe{
		option.None:  "No Value",
		option.Some:  nonsense,
		option.Error: stringify,
	})
	//
	t.Logf("y1 = %d, y2 = %s, y3 = %v", y1, y2, y3)
	if y1.(int) != 43 {
		t.Errorf("expected some(42) to match to 43, is %d", y1)
	}
	if y2.(string) != "No Value" {
		t.Errorf("expected none() to match to No Value, is %v", y2)
	}
	if y3 != "Value = 42" {
		t.Errorf("expected some(42) to match to Value = 42, is %v", y3)
	}
}

func TestOptionOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.core")
	defer teardown()
	//
	x := some(1)
	y1, err := x.Match(option.Of{
		option.None: 7,
		1:           99,
		option.Some: x.v,
	})
	if err != nil || y1.(int) != 99 {
		t.Errorf("expected some(1) to match to 99, is %v (%v)", y1, err)
	}
	y2, _ := some(5).Match(option.Of{
		1:           99,
		option.Some: "other",
	})
	if y2 != "other" {
		t.Errorf("expected some(5) to fall through to Some, is %v", y2)
	}
}

func TestOptionFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.core")
	defer teardown()
	//
	x := some(1)
	_, err := x.Match(option.Of{
		option.None:  7,
		1:            option.Fail(errors.New("Fail")),
		option.Some:  x.v,
		option.Error: option.Fail(errors.New("Caught Fail")),
	})
	if err == nil {
		t.Fatalf("expected some(1) to match to an error, hasn't")
	}
	if err.Error() != "Caught Fail" {
		t.Errorf("expected some(1) error to be caught, isn't")
	}
	_, err = none().Match(option.Maybe{option.Some: 1})
	if err != option.ErrCannotMatchUnsetValue {
		t.Errorf("expected unset value to be unmatchable, err = %v", err)
	}
	if option.Safe(none().Match(option.Maybe{option.None: "x"})) != "x" {
		t.Errorf("expected Safe to pass through value")
	}
}

// ---------------------------------------------------------------------------

type maybeInt struct {
	v   int
	set bool
}

func some(n int) maybeInt { return maybeInt{v: n, set: true} }
func none() maybeInt      { return maybeInt{} }

func (o maybeInt) Match(choices interface{}) (interface{}, error) {
	return option.Match(o, choices)
}

func (o maybeInt) Equals(other interface{}) bool {
	n, ok := other.(int)
	return ok && o.set && n == o.v
}

func (o maybeInt) IsNone() bool {
	return !o.set
}

var _ option.Type = maybeInt{}

func nonsense(x interface{}) (interface{}, error) {
	return nil, errors.New("ERROR")
}

func stringify(x interface{}) (interface{}, error) {
	return fmt.Sprintf("Value = %v", x.(maybeInt).v), nil
}
