package render

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 10
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 60
	gridMajorAlpha = 120
	axisLineAlpha  = 200
)

var (
	gridMinor = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajor = rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// drawGrid draws a helper grid on the XZ plane at height y with the X and Z axes highlighted.
func drawGrid(y float32) {
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := gridMajor
		if i%gridMajorStep != 0 {
			c = gridMinor
		}
		start.X, start.Y, start.Z = float32(i), y, -gridExtent
		end.X, end.Y, end.Z = float32(i), y, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, y, float32(i)
		end.X, end.Y, end.Z = gridExtent, y, float32(i)
		rl.DrawLine3D(start, end, c)
	}
	rl.DrawLine3D(rl.NewVector3(-gridExtent, y, 0), rl.NewVector3(gridExtent, y, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, y, -gridExtent), rl.NewVector3(0, y, gridExtent), axisZ)
}
