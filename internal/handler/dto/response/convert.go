package response

import (
	"time"

	"hotel-management/internal/domain/money"

	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

// copyOption renders money in dollars and calendar days as YYYY-MM-DD.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Money{},
			DstType: copier.Float64,
			Fn: func(src any) (any, error) {
				return src.(money.Money).Dollars(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(dateLayout), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}

func centsToDollars(cents int64) float64 {
	return money.MustCents(cents).Dollars()
}

func convert[T any](src any) (T, error) {
	var dst T
	err := copyInto(&dst, src)
	return dst, err
}
