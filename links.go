package nvdocs

// OfficialLinks returns the static block of well-known NVIDIA/Mellanox
// documentation and support links. Pure static text; no caching, no
// network access.
func OfficialLinks() string {
	return `# Official NVIDIA/Mellanox Documentation Links

## Primary Documentation
- **ConnectX-7 User Manual**: https://docs.nvidia.com/networking/display/connectx7vpi
- **DOCA SDK**: https://docs.nvidia.com/doca/sdk/
- **VMA User Manual**: https://docs.nvidia.com/networking/display/VMAv98/
- **RDMA Programming Guide**: https://docs.nvidia.com/networking/display/RDMAAwareProgrammingv17/

## Driver Documentation
- **mlx5 Kernel Driver**: https://www.kernel.org/doc/html/latest/networking/device_drivers/ethernet/mellanox/mlx5/
- **DPDK mlx5 Driver**: https://doc.dpdk.org/guides/platform/mlx5.html
- **MLNX_OFED**: https://docs.nvidia.com/networking/display/MLNXOFEDv24100700/

## Downloads & Tools
- **DOCA Downloads**: https://developer.nvidia.com/networking/doca
- **Firmware Downloads**: https://network.nvidia.com/support/firmware/firmware-downloads/
- **Firmware Compatibility Matrix**: https://network.nvidia.com/support/mlnx-ofed-matrix/

## Community & Support
- **NVIDIA Networking Forums**: https://forums.developer.nvidia.com/c/networking/
- **rdma-core GitHub**: https://github.com/linux-rdma/rdma-core
- **RDMAmojo (tutorials)**: https://www.rdmamojo.com/

## Source Code
- **Linux kernel mlx5**: drivers/net/ethernet/mellanox/mlx5/
- **Linux kernel mlx5_ib**: drivers/infiniband/hw/mlx5/
`
}
