package entity

import "errors"

// Domain errors for optical computations.
var (
	// ErrWavelength indicates a non-positive wavelength.
	ErrWavelength = errors.New("optica: wavelength must be positive")

	// ErrZeroFocal indicates a lens with zero focal length.
	ErrZeroFocal = errors.New("optica: focal length is zero")

	// ErrNoElements indicates a lens system without any elements.
	ErrNoElements = errors.New("optica: lens system has no elements")

	// ErrElementMismatch indicates misaligned focal length, distance and material counts.
	ErrElementMismatch = errors.New("optica: element count mismatch")

	// ErrRefractiveIndex indicates a non-positive refractive index.
	ErrRefractiveIndex = errors.New("optica: refractive index must be positive")

	// ErrAfocal indicates a system whose effective focal length is undefined.
	ErrAfocal = errors.New("optica: system is afocal")

	// ErrTarget indicates an unusable optimization target.
	ErrTarget = errors.New("optica: target focal length must be finite and nonzero")

	// ErrAperture indicates a non-positive aperture size.
	ErrAperture = errors.New("optica: aperture size must be positive")

	// ErrScreenDistance indicates a zero aperture-to-screen distance.
	ErrScreenDistance = errors.New("optica: screen distance is zero")

	// ErrSampleCount indicates too few samples for a sweep or pattern.
	ErrSampleCount = errors.New("optica: at least two samples required")

	// ErrObjectAtFocus indicates an object placed exactly at the focal point.
	ErrObjectAtFocus = errors.New("optica: object at focal point, image at infinity")

	// ErrObjectDistance indicates a zero object distance.
	ErrObjectDistance = errors.New("optica: object distance must be nonzero")
)
