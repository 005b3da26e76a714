package checksums

const strDefault = "default"
