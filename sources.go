package nvdocs

// DefaultSources returns the compiled-in documentation sources covering the
// NVIDIA/Mellanox networking stack. Registry data is fixed configuration;
// no external file is consulted for it.
func DefaultSources() []Source {
	return []Source{
		{
			Topic:   "connectx7",
			Name:    "ConnectX-7 User Manual",
			BaseURL: "https://docs.nvidia.com/networking/display/ConnectX7VPI",
			Pages: []string{
				"", "/Introduction", "/Hardware+Installation", "/Driver+Installation",
				"/Firmware+Update", "/Port+Configuration", "/Troubleshooting",
				"/Specifications", "/Performance+Tuning",
			},
		},
		{
			Topic:   "doca",
			Name:    "DOCA SDK",
			BaseURL: "https://docs.nvidia.com/doca/sdk",
			Pages: []string{
				"", "/doca-overview/index.html",
				"/doca-installation-guide-for-linux/index.html",
				"/rdma-over-converged-ethernet/index.html",
			},
		},
		{
			Topic:   "vma",
			Name:    "VMA User Manual",
			BaseURL: "https://docs.nvidia.com/networking/display/VMAv98",
			Pages: []string{
				"", "/Introduction", "/Installation", "/Configuration",
				"/API", "/Performance+Tuning", "/Troubleshooting",
			},
		},
		{
			Topic:   "rdma",
			Name:    "RDMA Programming Guide",
			BaseURL: "https://docs.nvidia.com/networking/display/RDMAAwareProgrammingv17",
			Pages: []string{
				"", "/RDMA-Aware+Programming+Overview",
				"/RDMA+Verbs+API", "/Programming+Examples+Using+IBV+Verbs",
			},
		},
		{
			Topic:   "mlnx_ofed",
			Name:    "MLNX_OFED Documentation",
			BaseURL: "https://docs.nvidia.com/networking/display/MLNXOFEDv24100700",
			Pages:   []string{"", "/Introduction", "/Installation", "/Performance+Tuning"},
		},
		{
			Topic:   "mlx5_kernel",
			Name:    "mlx5 Kernel Driver",
			BaseURL: "https://www.kernel.org/doc/html/latest/networking/device_drivers/ethernet/mellanox/mlx5",
			Pages:   []string{"/index.html", "/kconfig.html", "/tracepoints.html", "/counters.html"},
		},
		{
			Topic:   "dpdk_mlx5",
			Name:    "DPDK mlx5 Driver",
			BaseURL: "https://doc.dpdk.org/guides/platform",
			Pages:   []string{"/mlx5.html"},
		},
	}
}

// DefaultRegistry returns a fresh registry holding the compiled-in sources.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultSources()...)
	if err != nil {
		panic(err)
	}
	return r
}
