package conf

// MockConf init and return glide mock conf
func MockConf() *Glide {
	return &Glide{
		Client: Client{
			ScanCount:  10,
			BatchLimit: 256,
		},
		Status: Status{
			Listen: "127.0.0.1:7345",
		},
		Compat: Compat{
			Addr:     "127.0.0.1:6379",
			KeySpace: "glide-compat",
		},
	}
}
