// Command orbit is a WebGPU orbit-camera viewer. "orbit view" opens a window; "orbit simulate"
// replays held keys headlessly and logs the camera path.
package main

func main() {
	Execute()
}
