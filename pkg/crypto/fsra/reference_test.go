package fsra

// alpha0Reference is the full alpha_0 table captured from the reference
// implementation (beta polynomial 0x1C3, exponents 71/12/3/24).
var alpha0Reference = Table{
	0x00000000, 0xB6086D1A, 0xAF10DA34, 0x1918B72E, 0x9D207768, 0x2B281A72, 0x3230AD5C, 0x8438C046,
	0xF940EED0, 0x4F4883CA, 0x565034E4, 0xE05859FE, 0x646099B8, 0xD268F4A2, 0xCB70438C, 0x7D782E96,
	0x31801F63, 0x87887279, 0x9E90C557, 0x2898A84D, 0xACA0680B, 0x1AA80511, 0x03B0B23F, 0xB5B8DF25,
	0xC8C0F1B3, 0x7EC89CA9, 0x67D02B87, 0xD1D8469D, 0x55E086DB, 0xE3E8EBC1, 0xFAF05CEF, 0x4CF831F5,
	0x62C33EC6, 0xD4CB53DC, 0xCDD3E4F2, 0x7BDB89E8, 0xFFE349AE, 0x49EB24B4, 0x50F3939A, 0xE6FBFE80,
	0x9B83D016, 0x2D8BBD0C, 0x34930A22, 0x829B6738, 0x06A3A77E, 0xB0ABCA64, 0xA9B37D4A, 0x1FBB1050,
	0x534321A5, 0xE54B4CBF, 0xFC53FB91, 0x4A5B968B, 0xCE6356CD, 0x786B3BD7, 0x61738CF9, 0xD77BE1E3,
	0xAA03CF75, 0x1C0BA26F, 0x05131541, 0xB31B785B, 0x3723B81D, 0x812BD507, 0x98336229, 0x2E3B0F33,
	0xC4457C4F, 0x724D1155, 0x6B55A67B, 0xDD5DCB61, 0x59650B27, 0xEF6D663D, 0xF675D113, 0x407DBC09,
	0x3D05929F, 0x8B0DFF85, 0x921548AB, 0x241D25B1, 0xA025E5F7, 0x162D88ED, 0x0F353FC3, 0xB93D52D9,
	0xF5C5632C, 0x43CD0E36, 0x5AD5B918, 0xECDDD402, 0x68E51444, 0xDEED795E, 0xC7F5CE70, 0x71FDA36A,
	0x0C858DFC, 0xBA8DE0E6, 0xA39557C8, 0x159D3AD2, 0x91A5FA94, 0x27AD978E, 0x3EB520A0, 0x88BD4DBA,
	0xA6864289, 0x108E2F93, 0x099698BD, 0xBF9EF5A7, 0x3BA635E1, 0x8DAE58FB, 0x94B6EFD5, 0x22BE82CF,
	0x5FC6AC59, 0xE9CEC143, 0xF0D6766D, 0x46DE1B77, 0xC2E6DB31, 0x74EEB62B, 0x6DF60105, 0xDBFE6C1F,
	0x97065DEA, 0x210E30F0, 0x381687DE, 0x8E1EEAC4, 0x0A262A82, 0xBC2E4798, 0xA536F0B6, 0x133E9DAC,
	0x6E46B33A, 0xD84EDE20, 0xC156690E, 0x775E0414, 0xF366C452, 0x456EA948, 0x5C761E66, 0xEA7E737C,
	0x4B8AF89E, 0xFD829584, 0xE49A22AA, 0x52924FB0, 0xD6AA8FF6, 0x60A2E2EC, 0x79BA55C2, 0xCFB238D8,
	0xB2CA164E, 0x04C27B54, 0x1DDACC7A, 0xABD2A160, 0x2FEA6126, 0x99E20C3C, 0x80FABB12, 0x36F2D608,
	0x7A0AE7FD, 0xCC028AE7, 0xD51A3DC9, 0x631250D3, 0xE72A9095, 0x5122FD8F, 0x483A4AA1, 0xFE3227BB,
	0x834A092D, 0x35426437, 0x2C5AD319, 0x9A52BE03, 0x1E6A7E45, 0xA862135F, 0xB17AA471, 0x0772C96B,
	0x2949C658, 0x9F41AB42, 0x86591C6C, 0x30517176, 0xB469B130, 0x0261DC2A, 0x1B796B04, 0xAD71061E,
	0xD0092888, 0x66014592, 0x7F19F2BC, 0xC9119FA6, 0x4D295FE0, 0xFB2132FA, 0xE23985D4, 0x5431E8CE,
	0x18C9D93B, 0xAEC1B421, 0xB7D9030F, 0x01D16E15, 0x85E9AE53, 0x33E1C349, 0x2AF97467, 0x9CF1197D,
	0xE18937EB, 0x57815AF1, 0x4E99EDDF, 0xF89180C5, 0x7CA94083, 0xCAA12D99, 0xD3B99AB7, 0x65B1F7AD,
	0x8FCF84D1, 0x39C7E9CB, 0x20DF5EE5, 0x96D733FF, 0x12EFF3B9, 0xA4E79EA3, 0xBDFF298D, 0x0BF74497,
	0x768F6A01, 0xC087071B, 0xD99FB035, 0x6F97DD2F, 0xEBAF1D69, 0x5DA77073, 0x44BFC75D, 0xF2B7AA47,
	0xBE4F9BB2, 0x0847F6A8, 0x115F4186, 0xA7572C9C, 0x236FECDA, 0x956781C0, 0x8C7F36EE, 0x3A775BF4,
	0x470F7562, 0xF1071878, 0xE81FAF56, 0x5E17C24C, 0xDA2F020A, 0x6C276F10, 0x753FD83E, 0xC337B524,
	0xED0CBA17, 0x5B04D70D, 0x421C6023, 0xF4140D39, 0x702CCD7F, 0xC624A065, 0xDF3C174B, 0x69347A51,
	0x144C54C7, 0xA24439DD, 0xBB5C8EF3, 0x0D54E3E9, 0x896C23AF, 0x3F644EB5, 0x267CF99B, 0x90749481,
	0xDC8CA574, 0x6A84C86E, 0x739C7F40, 0xC594125A, 0x41ACD21C, 0xF7A4BF06, 0xEEBC0828, 0x58B46532,
	0x25CC4BA4, 0x93C426BE, 0x8ADC9190, 0x3CD4FC8A, 0xB8EC3CCC, 0x0EE451D6, 0x17FCE6F8, 0xA1F48BE2,
}
