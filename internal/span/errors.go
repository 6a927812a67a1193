package span

import "errors"

// errDecodeOverrun is returned by Decode when the bit reader has not
// reached Done() yet but the destination is already full, meaning the
// declared compressed-bits count and the destination length disagree.
var errDecodeOverrun = errors.New("span: decoded symbol count exceeds destination length")
