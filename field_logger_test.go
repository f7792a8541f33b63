package tracefmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func spanFieldsForTest() []NamedField {
	return []NamedField{
		{Key: "trace-id", Renderer: Renderer().Build()},
		{Key: "op", Renderer: Renderer().WithField(FieldOperationName).Build()},
	}
}

func TestWithSpanFieldsInfo(t *testing.T) {
	rec := newRecordLogger()
	span := testSpan()

	log := WithSpanFields(rec, span, spanFieldsForTest()...)
	log.Info("handling", "attempt", 2)

	entries := rec.recorded()
	assert.Len(t, entries, 1)
	assert.Equal(t, "handling", entries[0].msg)
	// Caller pairs come first, rendered fields after.
	assert.Equal(t, []interface{}{
		"attempt", 2,
		"trace-id", testTraceID,
		"op", "charge",
	}, entries[0].kvs)
}

func TestWithSpanFieldsError(t *testing.T) {
	rec := newRecordLogger()
	span := testSpan()

	log := WithSpanFields(rec, span, spanFieldsForTest()...)
	log.Error(errors.New("kaboom"), "failed")

	entries := rec.recorded()
	assert.Len(t, entries, 1)
	m := kvMap(entries[0].kvs[2:])
	assert.Equal(t, testTraceID, m["trace-id"])
	assert.Equal(t, "charge", m["op"])
}

func TestWithSpanFieldsComposite(t *testing.T) {
	rec := newRecordLogger()
	span := testSpan()

	log := WithSpanFields(rec, span, spanFieldsForTest()...).
		WithName("sub").V(1).WithValues()
	log.Info("named")

	entries := rec.recorded()
	assert.Len(t, entries, 1)
	assert.Equal(t, "sub", entries[0].name)
	m := kvMap(entries[0].kvs)
	assert.Equal(t, testTraceID, m["trace-id"])
}

func TestWithSpanFieldsDisabled(t *testing.T) {
	rec := newRecordLogger()
	rec.off = true

	log := WithSpanFields(rec, testSpan(), spanFieldsForTest()...)
	assert.False(t, log.Enabled())
	log.Info("dropped")
	log.Error(errors.New("x"), "dropped")
	assert.Empty(t, rec.recorded())
}

func TestWithSpanFieldsDoesNotMutateCallerSlice(t *testing.T) {
	rec := newRecordLogger()
	span := testSpan()

	kvs := make([]interface{}, 2, 8)
	kvs[0], kvs[1] = "a", 1

	log := WithSpanFields(rec, span, spanFieldsForTest()...)
	log.Info("one", kvs...)

	assert.Equal(t, []interface{}{"a", 1}, kvs)
	assert.Equal(t, 2, len(kvs))
}
