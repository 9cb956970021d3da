package checkredis

import (
	"bytes"
	"strconv"

	"github.com/consol-monitoring/check_redis/pkg/convert"
)

// CheckMetric contains a single performance value. Consumers parse the
// rendered entry by position, so all five fields are always present.
type CheckMetric struct {
	Name     string
	Value    interface{} // nil renders as the unknown token "U"
	Warning  *float64
	Critical *float64
	Min      *float64
	Max      *float64
}

// String renders the metric as "name=value;warning;critical;min;max"
// with absent fields left empty.
func (m *CheckMetric) String() string {
	var res bytes.Buffer

	res.WriteString(m.Name)
	res.WriteString("=")
	switch val := m.Value.(type) {
	case nil:
		res.WriteString("U")
	case string:
		res.WriteString(val)
	default:
		res.WriteString(convert.Num2String(val))
	}

	for _, limit := range []*float64{m.Warning, m.Critical, m.Min, m.Max} {
		res.WriteString(";")
		if limit != nil {
			res.WriteString(strconv.FormatFloat(*limit, 'f', -1, 64))
		}
	}

	return res.String()
}
