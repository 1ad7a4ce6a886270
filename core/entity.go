package core

// Entity is a unique identifier for game entities
// Zero is the null entity; registries hand out ids starting at 1
type Entity uint64
