// Package choreocfg centralizes the tunable constants spec.md names inline
// (K candidates, samples per path, resolver attempt budget, provider timeout
// and retry budget, local ranker weight tables) into one explicit Config
// struct with a DefaultConfig constructor, so every tunable has a named,
// documented default rather than a bare literal scattered through the
// pipeline. An optional TOML loader lets operators override defaults from a
// file using BurntSushi/toml.
package choreocfg
