// Package nvdocs provides cached retrieval and search of NVIDIA networking
// documentation. It resolves pages from a fixed registry of documentation
// sources (ConnectX-7, DOCA, VMA, RDMA, MLNX_OFED, the mlx5 kernel driver,
// and DPDK), converts them to markdown, caches them on disk with a 24-hour
// TTL, and exposes fetch/search/list operations over MCP and a CLI.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, goquery/, htmltomarkdown/).
package nvdocs
