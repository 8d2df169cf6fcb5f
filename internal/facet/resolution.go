package facet

// Resolution class labels, the fixed four-bucket domain.
const (
	Class4K    = "4k"
	Class1080p = "1080p"
	Class720p  = "720p"
	ClassSD    = "sd"
)

// Classes returns the full resolution-class domain in descending order.
func Classes() []string {
	return []string{Class4K, Class1080p, Class720p, ClassSD}
}

// ResolutionClass categorizes a video height. Derived, never stored.
func ResolutionClass(height int) string {
	switch {
	case height >= 2160:
		return Class4K
	case height >= 1080:
		return Class1080p
	case height >= 720:
		return Class720p
	default:
		return ClassSD
	}
}
