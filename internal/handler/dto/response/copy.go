package response

import "github.com/jinzhu/copier"

// copyView fills dst from a query view with matching field names and types.
// A failure here is a programming error, so it panics and is recovered by the
// router.
func copyView(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		panic("response: copy view: " + err.Error())
	}
}
