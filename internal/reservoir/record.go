package reservoir

// Record identifies the reservoir and data year recovered from one file header.
type Record struct {
	Name string
	Year string
}

// FileName returns the canonical file name for the record: <name>_<year>.txt.
func (r Record) FileName() string {
	return r.Name + "_" + r.Year + FileExt
}

func (r Record) String() string {
	return r.Name + " " + r.Year
}

// FileExt is the extension given to every organized data file.
const FileExt = ".txt"
