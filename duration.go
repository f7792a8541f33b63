package tracefmt

import (
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
)

// millisCacheSize is the number of pre-rendered whole-millisecond
// strings. Values beyond the cache degrade to direct conversion; the
// cache is an accelerator, never a correctness requirement.
const millisCacheSize = 1000

// millisCache holds a *[millisCacheSize]string once published. The
// first CompareAndSwap wins; concurrent losers compute an equally
// valid array and discard it, which is safe because the array is pure
// data and never mutated after publication.
var millisCache atomic.Value //nolint:gochecknoglobals

func cachedMillis() *[millisCacheSize]string {
	if v := millisCache.Load(); v != nil {
		return v.(*[millisCacheSize]string)
	}
	arr := new([millisCacheSize]string)
	for i := range arr {
		arr[i] = strconv.Itoa(i)
	}
	millisCache.CompareAndSwap(nil, arr)
	return millisCache.Load().(*[millisCacheSize]string)
}

func millisString(n int64) string {
	if n >= 0 && n < millisCacheSize {
		return cachedMillis()[n]
	}
	return strconv.FormatInt(n, 10)
}

// writeDurationMs renders the elapsed time in milliseconds. With the
// invariant culture and no format string it takes the allocation-free
// integer fast path; otherwise the total milliseconds are formatted as
// a floating-point value under the requested format and culture.
func (r *FieldRenderer) writeDurationMs(sink Sink, span SpanView) {
	d, ok := elapsed(span)
	if !ok {
		return
	}
	if r.format == "" && r.culture == language.Und {
		writeMillisFast(sink, d)
		return
	}
	format := r.format
	if format == "" {
		format = "%v"
	}
	writeString(sink, r.sprintf(format, float64(d)/float64(time.Millisecond)))
}

// writeMillisFast splits the duration into whole milliseconds and a
// whole-microsecond remainder, avoiding floating-point formatting on
// the hot logging path. A zero remainder renders as a literal ".0";
// otherwise the remainder is left-padded to three digits.
func writeMillisFast(sink Sink, d time.Duration) {
	whole := int64(d / time.Millisecond)
	micros := int64((d - time.Duration(whole)*time.Millisecond) / time.Microsecond)

	writeString(sink, millisString(whole))
	if micros == 0 {
		writeString(sink, ".0")
		return
	}
	writeString(sink, ".")
	if micros < 100 {
		writeString(sink, "0")
		if micros < 10 {
			writeString(sink, "0")
		}
	}
	writeString(sink, millisString(micros))
}
