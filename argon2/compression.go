package argon2

// ga is one Blake2b-style quarter round with BlaMka in place of the plain
// adds. Four column applications followed by four diagonal applications
// (driven by applyP below) make up one pass of the permutation P.
func ga(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = blamka(a, b)
	d = rotr64(d^a, 32)
	c = blamka(c, d)
	b = rotr64(b^c, 24)

	a = blamka(a, b)
	d = rotr64(d^a, 16)
	c = blamka(c, d)
	b = rotr64(b^c, 63)
	return a, b, c, d
}

// applyP runs the permutation P over a 16-word row or column: four
// column-wise ga calls, then four diagonal ga calls.
func applyP(t00, t01, t02, t03, t04, t05, t06, t07, t08, t09, t10, t11, t12, t13, t14, t15 *uint64) {
	v00, v01, v02, v03 := *t00, *t01, *t02, *t03
	v04, v05, v06, v07 := *t04, *t05, *t06, *t07
	v08, v09, v10, v11 := *t08, *t09, *t10, *t11
	v12, v13, v14, v15 := *t12, *t13, *t14, *t15

	v00, v04, v08, v12 = ga(v00, v04, v08, v12)
	v01, v05, v09, v13 = ga(v01, v05, v09, v13)
	v02, v06, v10, v14 = ga(v02, v06, v10, v14)
	v03, v07, v11, v15 = ga(v03, v07, v11, v15)

	v00, v05, v10, v15 = ga(v00, v05, v10, v15)
	v01, v06, v11, v12 = ga(v01, v06, v11, v12)
	v02, v07, v08, v13 = ga(v02, v07, v08, v13)
	v03, v04, v09, v14 = ga(v03, v04, v09, v14)

	*t00, *t01, *t02, *t03 = v00, v01, v02, v03
	*t04, *t05, *t06, *t07 = v04, v05, v06, v07
	*t08, *t09, *t10, *t11 = v08, v09, v10, v11
	*t12, *t13, *t14, *t15 = v12, v13, v14, v15
}

// compressBlock is the Argon2 compression function G(x, y, out, needXor):
//
//  1. r := x xor y
//  2. P applied to each of the 8 rows of r
//  3. P applied to each of the 8 columns of r
//  4. out := (needXor ? out : 0) xor r xor x xor y
//
// needXor distinguishes version 0x10 (always overwrite) from 0x13
// (XOR-accumulate on passes >= 1).
func compressBlock(out, x, y *block, needXor bool) {
	var r block
	r.xor(x, y)

	for i := 0; i < blockWords; i += 16 {
		applyP(
			&r[i+0], &r[i+1], &r[i+2], &r[i+3],
			&r[i+4], &r[i+5], &r[i+6], &r[i+7],
			&r[i+8], &r[i+9], &r[i+10], &r[i+11],
			&r[i+12], &r[i+13], &r[i+14], &r[i+15],
		)
	}
	for i := 0; i < blockWords/8; i += 2 {
		applyP(
			&r[i], &r[i+1], &r[16+i], &r[16+i+1],
			&r[32+i], &r[32+i+1], &r[48+i], &r[48+i+1],
			&r[64+i], &r[64+i+1], &r[80+i], &r[80+i+1],
			&r[96+i], &r[96+i+1], &r[112+i], &r[112+i+1],
		)
	}

	if needXor {
		for i := range out {
			out[i] ^= x[i] ^ y[i] ^ r[i]
		}
	} else {
		for i := range out {
			out[i] = x[i] ^ y[i] ^ r[i]
		}
	}
	r.zero()
}
