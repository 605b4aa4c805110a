package notation

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rolld/internal/models"
)

// Render turns a RollSpec back into dice notation.
//
//	{2, 6, 0}   => "2d6"
//	{3, 12, -5} => "3d12-5"
//	{3, 6, 10}  => "3d6+10"
func Render(spec models.RollSpec) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(spec.DiceCount))
	b.WriteByte('d')
	b.WriteString(strconv.Itoa(spec.FaceCount))
	if spec.Modifier > 0 {
		b.WriteByte('+')
	}
	if spec.Modifier != 0 {
		b.WriteString(strconv.Itoa(spec.Modifier))
	}
	return b.String()
}
