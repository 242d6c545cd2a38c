package view

import (
	"testing"

	"github.com/ravelui/ravel/pkg/tt"
)

func TestLIS(t *testing.T) {
	tt.Test(t, "lis", lis, tt.Table{
		tt.Args([]int(nil)).Rets([]int(nil)),
		tt.Args([]int{5}).Rets([]int{0}),
		tt.Args([]int{1, 2, 3}).Rets([]int{0, 1, 2}),
		tt.Args([]int{3, 0, 1, 2}).Rets([]int{1, 2, 3}),
		tt.Args([]int{3, 2, 1, 0}).Rets([]int{3}),
		tt.Args([]int{1, 3, 2, 4}).Rets([]int{0, 2, 3}),
	})
}
