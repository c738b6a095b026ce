package util

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// TimeAsTimestamp is stored as an UNIX timestamp but used as a time.Time
type TimeAsTimestamp time.Time

func (t TimeAsTimestamp) Value() (driver.Value, error) {
	return driver.Value(time.Time(t).Unix()), nil
}

func (t TimeAsTimestamp) Time() time.Time {
	return time.Time(t)
}

func (t *TimeAsTimestamp) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		tmp, err := strconv.ParseInt(string(src), 10, 64)
		if err != nil {
			return err
		}

		*t = TimeAsTimestamp(time.Unix(tmp, 0))
	case int64:
		tmp := TimeAsTimestamp(time.Unix(src, 0))
		*t = tmp
	default:
		return fmt.Errorf("expected []byte or int64, got %T", src)
	}

	return nil
}
