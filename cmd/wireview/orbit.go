package main

import "github.com/charmbracelet/harmonica"

// axis is one angle whose angular velocity bleeds off through a critically
// damped spring.
type axis struct {
	Angle    float64
	Velocity float64
	accel    float64
}

// OrbitControl animates the viewer: yaw and pitch orbit the camera, roll
// turns the model, and the camera distance eases toward its target.
type OrbitControl struct {
	Yaw, Pitch, Roll axis

	Distance float64
	distVel  float64

	spin harmonica.Spring
	zoom harmonica.Spring
}

// NewOrbitControl creates a control at rest at the given distance.
func NewOrbitControl(fps int, distance float64) *OrbitControl {
	return &OrbitControl{
		Distance: distance,
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		spin: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
		zoom: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances one frame, easing Distance toward targetDistance.
func (o *OrbitControl) Update(targetDistance float64) {
	for _, a := range []*axis{&o.Yaw, &o.Pitch, &o.Roll} {
		a.Angle += a.Velocity
		a.Velocity, a.accel = o.spin.Update(a.Velocity, a.accel, 0)
	}
	o.Distance, o.distVel = o.zoom.Update(o.Distance, o.distVel, targetDistance)
}

// ApplyImpulse adds angular velocity.
func (o *OrbitControl) ApplyImpulse(pitch, yaw, roll float64) {
	o.Pitch.Velocity += pitch
	o.Yaw.Velocity += yaw
	o.Roll.Velocity += roll
}

// Reset stops all motion and returns to the starting orientation. The
// distance keeps easing from where it is.
func (o *OrbitControl) Reset() {
	o.Yaw, o.Pitch, o.Roll = axis{}, axis{}, axis{}
}
