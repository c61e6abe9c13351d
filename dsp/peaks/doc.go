// Package peaks finds well-separated, prominent local maxima in an amplitude
// envelope.
//
// Detection applies its constraints in a fixed order: strict local maxima,
// then an absolute height floor, then a relative prominence floor, then
// greedy distance thinning in descending height order. The ordering is part
// of the contract. In particular, the height-first thinning decides which of
// two closely spaced peaks survives; reordering the stages or thinning
// left-to-right would silently change detections on real material.
package peaks
