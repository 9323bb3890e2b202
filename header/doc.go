// Package header locates the end of the ASCII header of an AER data file.
//
// An AER data file starts with free-form text lines, conventionally each
// beginning with '#', and terminated by the literal line
//
//	#End Of ASCII Header\r\n
//
// Everything after that line is the binary record stream.
//
// # Usage
//
//	h, err := header.Scan(bufio.NewReader(f))
//	if errors.Is(err, header.ErrNotFound) {
//	    // not an AER data file
//	}
//	fmt.Println(h.Version(), h.Size)
package header
