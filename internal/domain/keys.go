package domain

// KeyPrefix namespaces every key written to the shared store.
const KeyPrefix = "vecsense:"
