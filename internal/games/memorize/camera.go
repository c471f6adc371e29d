package memorize

// Camera flies along -Z through the dynamic-mode scene.
type Camera struct {
	Z    float64
	step float64
}

// Reference frame rate the camera step is tuned for.
const cameraBaseRate = 60

// NewCamera creates a camera at the origin moving speed/5 units per frame
// at 60 frames per second, scaled for other tick rates.
func NewCamera(speed, tickRate int) Camera {
	if tickRate <= 0 {
		tickRate = cameraBaseRate
	}
	return Camera{step: float64(speed) / 5 * cameraBaseRate / float64(tickRate)}
}

// Advance moves the camera one frame forward and returns its position.
func (c *Camera) Advance() int {
	c.Z -= c.step
	return c.Position()
}

// Position returns the camera depth truncated to a whole unit.
func (c Camera) Position() int {
	return int(c.Z)
}

// Step returns the distance covered per frame.
func (c Camera) Step() float64 {
	return c.step
}
