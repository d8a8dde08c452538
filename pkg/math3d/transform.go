package math3d

// Transformation2D builds a transform in the xy plane: scale about
// scalingCenter, then rotate by angle about rotationCenter, then
// translate. z passes through unchanged.
func Transformation2D(scalingCenter, scale, rotationCenter Vec2, angle float32, translation Vec2) Mat4 {
	s := Translation(-scalingCenter.X, -scalingCenter.Y, 0).
		Mul(Scaling(scale.X, scale.Y, 1)).
		Mul(Translation(scalingCenter.X, scalingCenter.Y, 0))

	r := Translation(-rotationCenter.X, -rotationCenter.Y, 0).
		Mul(RotationZ(angle)).
		Mul(Translation(rotationCenter.X, rotationCenter.Y, 0))

	return s.Mul(r).Mul(Translation(translation.X, translation.Y, 0))
}

// Transformation builds a 3D transform: scale about scalingCenter, then
// rotate by angle around the unit axis through rotationCenter, then
// translate.
func Transformation(scalingCenter, scale, rotationCenter, axis Vec3, angle float32, translation Vec3) Mat4 {
	s := TranslationV(scalingCenter.Negate()).
		Mul(ScalingV(scale)).
		Mul(TranslationV(scalingCenter))

	r := TranslationV(rotationCenter.Negate()).
		Mul(RotationAxis(axis, angle)).
		Mul(TranslationV(rotationCenter))

	return s.Mul(r).Mul(TranslationV(translation))
}

// Compose builds the common scale, rotate, translate world matrix with the
// rotation given as yaw, pitch and roll.
func Compose(scale Vec3, yaw, pitch, roll float32, translation Vec3) Mat4 {
	return ScalingV(scale).
		Mul(RotationYawPitchRoll(yaw, pitch, roll)).
		Mul(TranslationV(translation))
}
