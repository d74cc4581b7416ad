package config

// Default window and renderer layout: a main renderer on layer 0 covering
// the window and a small overlay renderer in the lower-left corner used for
// the orientation axes.
func DefaultWindow() Node {
	return Node{
		"window": Node{
			"size":             []interface{}{1200.0, 900.0},
			"title":            "SimpleVolumeViewer",
			"number_of_layers": 2.0,
		},
		"renderers": Node{
			"0": Node{
				"layer": 0.0,
			},
			"1": Node{
				"layer":     1.0,
				"view_port": []interface{}{0.0, 0.0, 0.2, 0.2},
			},
		},
	}
}

// Default scene: background, pickable 3D cursor, a main camera plus a
// follower camera for the orientation view, the orientation axes and the
// stock volume property with its opacity and color transfer functions.
func DefaultScene() Node {
	return Node{
		"object_properties": Node{
			"volume": Node{
				"opacity_transfer_function": Node{
					"AddPoint": []interface{}{
						[]interface{}{20.0, 0.0},
						[]interface{}{255.0, 0.2},
					},
					"opacity_scale": 40.0,
				},
				"color_transfer_function": Node{
					"AddRGBPoint": []interface{}{
						[]interface{}{0.0, 0.0, 0.0, 0.0},
						[]interface{}{64.0, 1.0, 0.0, 0.0},
						[]interface{}{128.0, 0.0, 0.0, 1.0},
						[]interface{}{192.0, 0.0, 1.0, 0.0},
						[]interface{}{255.0, 0.0, 0.2, 0.0},
					},
					"trans_scale": 40.0,
				},
				"interpolation": "cubic",
			},
		},
		"objects": Node{
			"background": Node{
				"type":  "Background",
				"color": "Wheat",
			},
			"3d_cursor": Node{
				"type": "Sphere",
			},
			"camera1": Node{
				"type":           "Camera",
				"renderer":       "0",
				"Azimuth":        45.0,
				"Elevation":      30.0,
				"clipping_range": []interface{}{0.01, 10000.0},
			},
			"camera2": Node{
				"type":             "Camera",
				"renderer":         "1",
				"follow_direction": "camera1",
			},
			"orientation_axes": Node{
				"type":             "AxesActor",
				"length":           1.0,
				"show_axis_labels": false,
				"renderer":         "1",
			},
		},
	}
}
