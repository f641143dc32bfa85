package fft

// fftwName is declared outside the cgo file so DefaultEngine can look it up
// in every build.
const fftwName = "fftw"
