package tracefmt

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestWriteMillisFast(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0.0"},
		{d: time.Nanosecond, want: "0.0"},
		{d: 5 * time.Microsecond, want: "0.005"},
		{d: 250 * time.Microsecond, want: "0.250"},
		{d: 2500 * time.Microsecond, want: "2.500"},
		{d: 12*time.Millisecond + 34*time.Microsecond, want: "12.034"},
		{d: 999 * time.Millisecond, want: "999.0"},
		{d: 1500*time.Millisecond + 250*time.Microsecond, want: "1500.250"},
		// Beyond the cache range the whole part degrades to direct conversion.
		{d: 12345*time.Millisecond + 7*time.Microsecond, want: "12345.007"},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var buf bytes.Buffer
			writeMillisFast(&buf, tt.d)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDurationMsRecorded(t *testing.T) {
	span := testSpan()
	r := Renderer().WithField(FieldDurationMs).Build()
	assert.Equal(t, "1500.250", r.RenderString(span))
}

func TestDurationMsOpenSpan(t *testing.T) {
	r := Renderer().WithField(FieldDurationMs).Build()

	// Still open; elapsed time comes from the wall clock.
	span := &SpanData{Start: time.Now().UTC().Add(-time.Second)}
	got := r.RenderString(span)
	assert.NotEmpty(t, got)
	assert.False(t, strings.HasPrefix(got, "-"))

	// A start time ahead of the wall clock is clamped, never negative.
	span = &SpanData{Start: time.Now().UTC().Add(time.Hour)}
	assert.Equal(t, "0.0", r.RenderString(span))
}

func TestDurationMsUnsetStart(t *testing.T) {
	r := Renderer().WithField(FieldDurationMs).Build()
	assert.Equal(t, "", r.RenderString(&SpanData{}))
}

func TestDurationMsFormatFallback(t *testing.T) {
	span := testSpan()
	tests := []struct {
		format  string
		culture Culture
		want    string
	}{
		{format: "%.3f", want: "1500.250"},
		{format: "%.0f", want: "1500"},
		{format: "%v", want: "1500.25"},
		{format: "%.1f", culture: language.English, want: "1,500.2"},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r := Renderer().WithField(FieldDurationMs).
				WithFormat(tt.format).WithCulture(tt.culture).Build()
			assert.Equal(t, tt.want, r.RenderString(span))
		})
	}
}

func TestMillisCacheConcurrent(t *testing.T) {
	const workers = 16
	results := make([]*[millisCacheSize]string, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = cachedMillis()
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.Equal(t, "0", results[0][0])
	assert.Equal(t, "42", results[0][42])
	assert.Equal(t, "999", results[0][999])
}

func TestMillisString(t *testing.T) {
	assert.Equal(t, "7", millisString(7))
	assert.Equal(t, "1000", millisString(1000))
	assert.Equal(t, "-5", millisString(-5))
}
