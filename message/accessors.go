package message

import "strings"

func (o Options) setStrings(id OptionID, values []string, sep string) error {
	for _, v := range values {
		if strings.Contains(v, sep) {
			return ErrInvalidPathSegment
		}
	}
	o.Remove(id)
	for _, v := range values {
		o.Add(Option{ID: id, Value: Text(v)})
	}
	return nil
}

func (o Options) getStrings(id OptionID) []string {
	bucket := o.Get(id)
	if len(bucket) == 0 {
		return nil
	}
	values := make([]string, 0, len(bucket))
	for _, v := range bucket {
		if text, ok := v.(Text); ok {
			values = append(values, string(text))
		}
	}
	return values
}

// SetPathSegments replaces the Uri-Path bucket with one option per
// segment. A segment carrying an embedded "/" is rejected, it means an
// unsplit path was smuggled in as a single element.
func (o Options) SetPathSegments(segments []string) error {
	return o.setStrings(URIPath, segments, "/")
}

// PathSegments returns the Uri-Path segments in order, nil when unset.
func (o Options) PathSegments() []string {
	return o.getStrings(URIPath)
}

// SetPath sets the Uri-Path from a "/" separated string. The root path
// is not stored as an option.
func (o Options) SetPath(path string) {
	switch path {
	case "", "/":
		o.Remove(URIPath)
		return
	}
	if path[0] == '/' {
		path = path[1:]
	}
	segments := strings.Split(path, "/")
	o.Remove(URIPath)
	for _, s := range segments {
		o.Add(Option{ID: URIPath, Value: Text(s)})
	}
}

// Path returns the Uri-Path as a "/" separated string with a leading
// separator.
func (o Options) Path() (string, error) {
	segments := o.PathSegments()
	if segments == nil {
		return "", ErrOptionNotFound
	}
	return "/" + strings.Join(segments, "/"), nil
}

// SetQueries replaces the Uri-Query bucket with one option per query
// parameter.
func (o Options) SetQueries(queries []string) error {
	return o.setStrings(URIQuery, queries, "&")
}

// Queries returns the Uri-Query parameters in order, nil when unset.
func (o Options) Queries() []string {
	return o.getStrings(URIQuery)
}

// SetLocationPathSegments replaces the Location-Path bucket with one
// option per segment.
func (o Options) SetLocationPathSegments(segments []string) error {
	return o.setStrings(LocationPath, segments, "/")
}

// LocationPathSegments returns the Location-Path segments in order.
func (o Options) LocationPathSegments() []string {
	return o.getStrings(LocationPath)
}

// SetLocationQueries replaces the Location-Query bucket with one option
// per query parameter.
func (o Options) SetLocationQueries(queries []string) error {
	return o.setStrings(LocationQuery, queries, "&")
}

// LocationQueries returns the Location-Query parameters in order.
func (o Options) LocationQueries() []string {
	return o.getStrings(LocationQuery)
}

// SetUint32 replaces the bucket of id with a single uint value.
func (o Options) SetUint32(id OptionID, value uint32) {
	o.Set(Option{ID: id, Value: Uint(value)})
}

// GetUint32 returns the first uint value of id.
func (o Options) GetUint32(id OptionID) (uint32, error) {
	bucket := o.Get(id)
	if len(bucket) == 0 {
		return 0, ErrOptionNotFound
	}
	v, ok := bucket[0].(Uint)
	if !ok {
		return 0, ErrOptionNotFound
	}
	return uint32(v), nil
}

func (o Options) setBlock(id OptionID, block Block) {
	o.Set(Option{ID: id, Value: block})
}

func (o Options) getBlock(id OptionID) (Block, error) {
	bucket := o.Get(id)
	if len(bucket) == 0 {
		return Block{}, ErrOptionNotFound
	}
	block, ok := bucket[0].(Block)
	if !ok {
		return Block{}, ErrOptionNotFound
	}
	return block, nil
}

// SetBlock1 replaces the Block1 bucket with a single block value.
func (o Options) SetBlock1(block Block) {
	o.setBlock(Block1, block)
}

// Block1 returns the Block1 value.
func (o Options) Block1() (Block, error) {
	return o.getBlock(Block1)
}

// SetBlock2 replaces the Block2 bucket with a single block value.
func (o Options) SetBlock2(block Block) {
	o.setBlock(Block2, block)
}

// Block2 returns the Block2 value.
func (o Options) Block2() (Block, error) {
	return o.getBlock(Block2)
}

// SetContentFormat sets the Content-Format option.
func (o Options) SetContentFormat(mt MediaType) {
	o.SetUint32(ContentFormat, uint32(mt))
}

// ContentFormat returns the Content-Format option.
func (o Options) ContentFormat() (MediaType, error) {
	v, err := o.GetUint32(ContentFormat)
	return MediaType(v), err
}

// SetAccept sets the Accept option.
func (o Options) SetAccept(mt MediaType) {
	o.SetUint32(Accept, uint32(mt))
}

// Accept returns the Accept option.
func (o Options) Accept() (MediaType, error) {
	v, err := o.GetUint32(Accept)
	return MediaType(v), err
}

// SetObserve sets the Observe option.
func (o Options) SetObserve(value uint32) {
	o.SetUint32(Observe, value)
}

// Observe returns the Observe option.
func (o Options) Observe() (uint32, error) {
	return o.GetUint32(Observe)
}

// SetMaxAge sets the Max-Age option.
func (o Options) SetMaxAge(value uint32) {
	o.SetUint32(MaxAge, value)
}

// MaxAge returns the Max-Age option.
func (o Options) MaxAge() (uint32, error) {
	return o.GetUint32(MaxAge)
}

// SetSize1 sets the Size1 option.
func (o Options) SetSize1(value uint32) {
	o.SetUint32(Size1, value)
}

// Size1 returns the Size1 option.
func (o Options) Size1() (uint32, error) {
	return o.GetUint32(Size1)
}

// SetSize2 sets the Size2 option.
func (o Options) SetSize2(value uint32) {
	o.SetUint32(Size2, value)
}

// Size2 returns the Size2 option.
func (o Options) Size2() (uint32, error) {
	return o.GetUint32(Size2)
}

// SetURIPort sets the Uri-Port option.
func (o Options) SetURIPort(value uint32) {
	o.SetUint32(URIPort, value)
}

// URIPort returns the Uri-Port option.
func (o Options) URIPort() (uint32, error) {
	return o.GetUint32(URIPort)
}
