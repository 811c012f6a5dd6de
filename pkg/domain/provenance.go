package domain

// LocalProvenance marks rows created through this service. Rows with any
// other provenance are externally managed and created read-only.
const LocalProvenance = "landscape"
